package git

import (
	"fmt"

	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"

	"github.com/redbadger/create-deployment/model"
)

const originRemote = "origin"

// Repository is a local checkout
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing dir, searching parent directories for .git
func Open(dir string) (r *Repository, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		err = fmt.Errorf("cannot open git repository at %s: %v", dir, err)
		return
	}
	r = &Repository{repo: repo}
	return
}

// Ref returns the name of the checked out reference, or the commit SHA if HEAD is detached
func (r *Repository) Ref() (ref string, err error) {
	head, err := r.repo.Head()
	if err != nil {
		err = fmt.Errorf("cannot get HEAD: %v", err)
		return
	}
	if head.Name() == plumbing.HEAD {
		ref = head.Hash().String()
		return
	}
	ref = head.Name().String()
	return
}

// Origin returns the owner and name of the repository the origin remote points at
func (r *Repository) Origin() (repo model.Repo, err error) {
	remote, err := r.repo.Remote(originRemote)
	if err != nil {
		err = fmt.Errorf("cannot get %s remote: %v", originRemote, err)
		return
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		err = fmt.Errorf("%s remote has no URL", originRemote)
		return
	}
	return ParseRemoteURL(urls[0])
}
