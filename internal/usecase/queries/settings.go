package queries

import "context"

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type SettingsViewRepo interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	repo SettingsViewRepo
}

func NewSettingsQueries(repo SettingsViewRepo) SettingsQueries {
	return &settingsQueriesImpl{repo: repo}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	return q.repo.Get(ctx)
}
