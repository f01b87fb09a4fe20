//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"errors"
	"net/url"
	"strings"
)

const (
	githubHost     = "github.com"
	githubWWWHost  = "www.github.com"
	rawContentHost = "raw.githubusercontent.com"
)

// ResolveRawURL converts a GitHub web URL of a file, like
//
//	https://github.com/OWNER/REPO/blob/REF/PATH
//
// into the URL serving the raw file content:
//
//	https://raw.githubusercontent.com/OWNER/REPO/REF/PATH
//
// URLs pointing elsewhere are returned unchanged. No network access is done.
func ResolveRawURL(webURL string) (string, error) {
	if strings.TrimSpace(webURL) == "" {
		return "", &Error{Kind: KindResolve, Op: "resolve", Err: errors.New("empty URL")}
	}
	u, err := url.Parse(webURL)
	if err != nil {
		return "", &Error{Kind: KindResolve, Op: "resolve", Path: webURL, Err: err}
	}
	if u.Host != githubHost && u.Host != githubWWWHost {
		return webURL, nil
	}

	u.Host = rawContentHost
	// OWNER/REPO/blob/REF/PATH: the "blob" segment only selects the HTML viewer
	segments := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(segments) > 3 && segments[2] == "blob" {
		segments = append(segments[:2], segments[3:]...)
		u.Path = "/" + strings.Join(segments, "/")
		u.RawPath = ""
	}
	u.Fragment = ""
	u.RawFragment = ""
	logger.Debugf("resolved %s to %s", webURL, u.String())
	return u.String(), nil
}
