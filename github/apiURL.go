package github

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	pubURL     = "https://api.github.com"
	apiVersion = "/v3"
)

var versionRoot = regexp.MustCompile("^.*" + apiVersion)

// APIRoot returns the root of a given API URL
// so for public github:
//   https://api.github.com/repos/my-org/my-repo/pulls/1 would return https://api.github.com
// and for enterprise github:
//   https://github.my-domain/api/v3/repos/my-org/my-repo/pulls/1 returns https://github.my-domain/api/v3
func APIRoot(apiURL string) (root string, err error) {
	if strings.HasPrefix(apiURL, pubURL) {
		root = pubURL
		return
	}

	u, err := url.Parse(apiURL)
	if u == nil || err != nil {
		err = fmt.Errorf("cannot parse API URL %s: %v", apiURL, err)
		return
	}
	if u.Scheme == "" || u.Host == "" {
		err = fmt.Errorf("API URL %s is not absolute", apiURL)
		return
	}
	match := versionRoot.FindString(u.Path)
	if match == "" {
		err = fmt.Errorf("API URL %s is not version 3", apiURL)
		return
	}
	u.Path = match
	u.RawQuery = ""
	u.Fragment = ""
	root = u.String()
	return
}
