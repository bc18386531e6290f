package folio

import "embed"

// EmbeddedAssets contains files shipped with the engine:
// folio.css and the seed post list.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
