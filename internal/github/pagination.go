// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	relaierrors "github.com/sirseerhq/sirseer-pulls/internal/errors"
)

// LinkParser extracts the last page number from a non-empty Link header.
type LinkParser interface {
	LastPage(link string) (int, error)
}

// NewLinkParser returns the parser for a configured strategy name
// ("positional" or "relation").
func NewLinkParser(strategy string) (LinkParser, error) {
	switch strategy {
	case "", "positional":
		return PositionalLinkParser{}, nil
	case "relation":
		return RelationLinkParser{}, nil
	default:
		return nil, fmt.Errorf("unknown pagination strategy %q", strategy)
	}
}

var pageTokenPattern = regexp.MustCompile(`page=(\d+)>`)

// PositionalLinkParser reads the header the way the listing has always been
// paged: the page=<N> tokens of the first-page probe come in the order
// [next, last], so the second token is the last page. A header with fewer
// than two tokens is rejected. Any other ordering is not detected.
type PositionalLinkParser struct{}

// LastPage implements LinkParser.
func (PositionalLinkParser) LastPage(link string) (int, error) {
	matches := pageTokenPattern.FindAllStringSubmatch(link, -1)
	if len(matches) < 2 {
		return 0, fmt.Errorf("expected next and last page references in link header %q, found %d: %w",
			link, len(matches), relaierrors.ErrPaginationParse)
	}
	page, err := strconv.Atoi(matches[1][1])
	if err != nil {
		return 0, fmt.Errorf("page number %q in link header: %w", matches[1][1], relaierrors.ErrPaginationParse)
	}
	return page, nil
}

// RelationLinkParser reads each segment's rel explicitly and returns the
// page of rel="last". Without "last" or "next" the listing has one page.
type RelationLinkParser struct{}

// LastPage implements LinkParser.
func (RelationLinkParser) LastPage(link string) (int, error) {
	pages := parseLinkRelations(link)

	if page, ok := pages["last"]; ok {
		return page, nil
	}
	if _, ok := pages["next"]; ok {
		return 0, fmt.Errorf("link header %q has rel=\"next\" but no rel=\"last\": %w",
			link, relaierrors.ErrPaginationParse)
	}
	return 1, nil
}

// parseLinkRelations maps each rel of an RFC 8288 Link header to the page
// query parameter of its URL. Segments without a page number are skipped.
func parseLinkRelations(link string) map[string]int {
	pages := make(map[string]int)
	for _, segment := range strings.Split(link, ",") {
		parts := strings.Split(strings.TrimSpace(segment), ";")
		if len(parts) < 2 {
			continue
		}
		target := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		page, ok := pageParam(target[1 : len(target)-1])
		if !ok {
			continue
		}
		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "rel=") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(param[len("rel="):], `"`)) {
				pages[rel] = page
			}
		}
	}
	return pages
}

// pageParam returns the value of the page query parameter in rawURL.
func pageParam(rawURL string) (int, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, false
	}
	page, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil {
		return 0, false
	}
	return page, true
}
