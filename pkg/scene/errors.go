package scene

import "errors"

var (
	ErrCapacityExceeded     = errors.New("scene: capacity exceeded")
	ErrUnknownScene         = errors.New("scene: unknown scene")
	ErrCameraNotOrthonormal = errors.New("scene: camera axes are not orthonormal")
)
