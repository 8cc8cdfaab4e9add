package utils

import "errors"

var (
	ErrNotMember        = errors.New("user is not a channel member")
	ErrNoFormats        = errors.New("no suitable formats found")
	ErrUnknownSelection = errors.New("unknown format selection")
	ErrDownloadFailed   = errors.New("download failed")
	ErrConversionFailed = errors.New("audio conversion failed")
	ErrDeliveryFailed   = errors.New("delivery failed")
	ErrConfiguration    = errors.New("configuration error")
)
