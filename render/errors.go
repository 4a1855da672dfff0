package render

import "errors"

var (
	ErrSceneNotDefined  = errors.New("render: no scene defined")
	ErrCameraNotDefined = errors.New("render: no camera defined")
)
