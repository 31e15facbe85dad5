package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceNotFound means no surface is registered under the name.
	ErrSurfaceNotFound = errors.New("surface not found")
	// ErrContextUnavailable means the surface cannot host an accelerated
	// graphics context.
	ErrContextUnavailable = errors.New("graphics context unavailable")
	// ErrShaderCompile matches every *ShaderCompileError.
	ErrShaderCompile  = errors.New("shader compile error")
	ErrNotInitialized = errors.New("engine not initialized")
	// ErrSurfaceClosed is returned by a Pacer once the user closed the
	// surface; frame loops treat it as a clean exit.
	ErrSurfaceClosed = errors.New("surface closed")
)

// ShaderCompileError carries the driver diagnostic for a failed compile or
// link. Stage is "vertex", "fragment" or "link".
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

func (e *ShaderCompileError) Is(target error) bool { return target == ErrShaderCompile }
