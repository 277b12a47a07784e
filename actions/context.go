package actions

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/constants"
	"github.com/redbadger/create-deployment/git"
	"github.com/redbadger/create-deployment/model"
)

// LoadContext returns the invocation context exported by the runner.
// Values the runner did not export are taken from the git checkout containing dir.
func LoadContext(v *viper.Viper, dir string) *model.Context {
	ctx := &model.Context{Ref: v.GetString(constants.RefEnvVar)}
	if repository := v.GetString(constants.RepositoryEnvVar); repository != "" {
		repo, err := model.ParseRepo(repository)
		if err != nil {
			log.WithError(err).Warnf("ignoring %s", constants.RepositoryEnvVar)
		} else {
			ctx.Repo = repo
		}
	}
	if ctx.Ref != "" && ctx.Repo.Owner != "" {
		return ctx
	}

	local, err := git.Open(dir)
	if err != nil {
		log.WithError(err).Debug("no local checkout to take the context from")
		return ctx
	}
	if ctx.Ref == "" {
		if ctx.Ref, err = local.Ref(); err != nil {
			log.WithError(err).Debug("cannot read ref from local checkout")
		}
	}
	if ctx.Repo.Owner == "" {
		if ctx.Repo, err = local.Origin(); err != nil {
			log.WithError(err).Debug("cannot read repository from local checkout")
		}
	}
	return ctx
}
