package core

import (
	"errors"
)

var (
	ErrMeshNoVertices     = errors.New("mesh has no vertices")
	ErrMeshNoFaces        = errors.New("mesh has no faces")
	ErrHostUnavailable    = errors.New("render host unavailable")
	ErrBakeFailed         = errors.New("bake failed")
	ErrRenderFailed       = errors.New("render failed")
	ErrCheckpointCorrupt  = errors.New("checkpoint file corrupt")
	ErrLibraryClosed      = errors.New("mesh library already closed")
	ErrNothingToProcess   = errors.New("no meshes to process")
	ErrExporterNotBooted  = errors.New("exporter has not completed boot")
	ErrShutdownInProgress = errors.New("shutdown in progress")
)
