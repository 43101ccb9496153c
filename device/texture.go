// SPDX-License-Identifier: MIT
// Package device: the read-only texture-cache binding.
//
// The hardware original routes irregular x[col] reads through a read-only
// cache bound to one vector for the duration of a kernel. The binding is a
// process-wide singleton resource: at most one live binding at a time,
// acquired before dispatch and released on every exit path.
//
// Here the binding is a scoped handle over the vector. Bind fails fast with
// ErrTextureBound while another binding is live; Release is idempotent so a
// deferred release composes with early-exit error paths.

package device

import (
	"errors"
	"sync"
)

// ErrTextureBound indicates an attempt to bind the texture cache while a
// previous binding is still live.
var ErrTextureBound = errors.New("device: texture cache already bound")

var (
	textureMu   sync.Mutex
	liveBinding *Texture
)

// Texture is a live read-only cache binding for one vector. The vector must
// not be mutated while the binding is live (it is read-only for the whole
// operation by contract).
type Texture struct {
	data []float64
}

// BindTexture acquires the cache for x. Fails with ErrTextureBound if any
// binding is currently live — the cache is a single-owner resource.
func BindTexture(x []float64) (*Texture, error) {
	textureMu.Lock()
	defer textureMu.Unlock()

	if liveBinding != nil {
		return nil, ErrTextureBound
	}
	t := &Texture{data: x}
	liveBinding = t

	return t, nil
}

// Fetch reads element j through the binding.
func (t *Texture) Fetch(j int) float64 {
	return t.data[j]
}

// Release frees the binding. Idempotent: releasing twice, or releasing a
// handle that was already superseded, is a no-op.
func (t *Texture) Release() {
	textureMu.Lock()
	defer textureMu.Unlock()

	if liveBinding == t {
		liveBinding = nil
		t.data = nil
	}
}
