package dashboard

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/source.go github.com/kasuboski/flixboard/pkg/dashboard Source
