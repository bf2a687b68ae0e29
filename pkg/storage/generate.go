package storage

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/storage.go github.com/kasuboski/flixboard/pkg/storage Storage
