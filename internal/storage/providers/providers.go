package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	SampleProvider *SampleProvider
	UserProvider   *UserProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		SampleProvider: NewSampleProvider(db),
		UserProvider:   NewUserProvider(db),
	}
}
