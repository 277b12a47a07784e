package git

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redbadger/create-deployment/model"
)

// ParseRemoteURL extracts owner/name from a remote URL such as
// https://github.com/owner/name.git, git@github.com:owner/name.git or ssh://git@github.com/owner/name
func ParseRemoteURL(remoteURL string) (repo model.Repo, err error) {
	var path string
	if strings.Contains(remoteURL, "://") {
		u, err := url.Parse(remoteURL)
		if err != nil {
			return repo, fmt.Errorf("cannot parse remote URL %s: %v", remoteURL, err)
		}
		path = u.Path
	} else if i := strings.Index(remoteURL, ":"); i >= 0 {
		// scp-like syntax
		path = remoteURL[i+1:]
	} else {
		return repo, fmt.Errorf("unsupported remote URL %s", remoteURL)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return repo, fmt.Errorf("remote URL %s has no owner/name", remoteURL)
	}
	// enterprise instances may serve repos under a prefix, the last two segments are what matter
	repo = model.Repo{Owner: parts[len(parts)-2], Repo: parts[len(parts)-1]}
	if repo.Owner == "" || repo.Repo == "" {
		return model.Repo{}, fmt.Errorf("remote URL %s has no owner/name", remoteURL)
	}
	return
}
