package renderer

import (
	"log"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/chewxy/math32"
)

// lightArrays holds the per-frame aggregation of scene lights into the
// flat parallel arrays the shaders consume. Slices keep their capacity
// across frames; tails left over from a frame with more lights are zeroed
// so shaders reading past the active prefix see no stale energy.
type lightArrays struct {
	ambient [3]float32

	dirColors    []float32
	dirPositions []float32
	dirLength    int

	pointColors    []float32
	pointPositions []float32
	pointDistances []float32
	pointLength    int

	spotColors     []float32
	spotPositions  []float32
	spotDistances  []float32
	spotDirections []float32
	spotAngles     []float32
	spotExponents  []float32
	spotLength     int

	hemiSkyColors    []float32
	hemiGroundColors []float32
	hemiPositions    []float32
	hemiLength       int
}

// grow returns s resized to n elements, reusing capacity; it does not clear
// old values, which zeroTail does.
func grow(s []float32, n int) []float32 {
	if cap(s) < n {
		out := make([]float32, n)
		copy(out, s)
		return out
	}
	s = s[:n]
	return s
}

// zeroTail clears everything past the active prefix, including the
// retained capacity from frames with more lights, so no stale energy
// survives a shrink.
func zeroTail(s []float32, from int) {
	full := s[:cap(s)]
	for i := from; i < len(full); i++ {
		full[i] = 0
	}
}

// setColor writes c scaled by intensity at offset, squaring both when
// gamma-input is on so lighting happens in linear space.
func setColor(dst []float32, offset int, c math3.Color, intensity float32, gammaInput bool) {
	if gammaInput {
		dst[offset] = c.R * c.R * intensity * intensity
		dst[offset+1] = c.G * c.G * intensity * intensity
		dst[offset+2] = c.B * c.B * intensity * intensity
	} else {
		dst[offset] = c.R * intensity
		dst[offset+1] = c.G * intensity
		dst[offset+2] = c.B * intensity
	}
}

// setupLights aggregates the scene's lights into the flat arrays, clamping
// each kind to the renderer's configured maximum (logged once).
func (r *rendererImpl) setupLights(lights []scene.LightNode) {
	la := &r.lights

	var dirCount, pointCount, spotCount, hemiCount int
	var clamped bool
	for _, l := range lights {
		if l.LightBase().OnlyShadow {
			continue
		}
		switch l.(type) {
		case *scene.DirectionalLight:
			dirCount++
		case *scene.PointLight:
			pointCount++
		case *scene.SpotLight:
			spotCount++
		case *scene.HemisphereLight:
			hemiCount++
		}
	}
	if dirCount > r.maxLights {
		dirCount, clamped = r.maxLights, true
	}
	if pointCount > r.maxLights {
		pointCount, clamped = r.maxLights, true
	}
	if spotCount > r.maxLights {
		spotCount, clamped = r.maxLights, true
	}
	if hemiCount > r.maxLights {
		hemiCount, clamped = r.maxLights, true
	}
	if clamped && !r.loggedLightClamp {
		log.Printf("[renderer] scene exceeds maxLights=%d, extra lights ignored", r.maxLights)
		r.loggedLightClamp = true
	}

	la.dirColors = grow(la.dirColors, dirCount*3)
	la.dirPositions = grow(la.dirPositions, dirCount*3)
	la.pointColors = grow(la.pointColors, pointCount*3)
	la.pointPositions = grow(la.pointPositions, pointCount*3)
	la.pointDistances = grow(la.pointDistances, pointCount)
	la.spotColors = grow(la.spotColors, spotCount*3)
	la.spotPositions = grow(la.spotPositions, spotCount*3)
	la.spotDistances = grow(la.spotDistances, spotCount)
	la.spotDirections = grow(la.spotDirections, spotCount*3)
	la.spotAngles = grow(la.spotAngles, spotCount)
	la.spotExponents = grow(la.spotExponents, spotCount)
	la.hemiSkyColors = grow(la.hemiSkyColors, hemiCount*3)
	la.hemiGroundColors = grow(la.hemiGroundColors, hemiCount*3)
	la.hemiPositions = grow(la.hemiPositions, hemiCount*3)

	var ambientR, ambientG, ambientB float32
	var di, pi, si, hi int

	for _, l := range lights {
		if l.LightBase().OnlyShadow {
			continue
		}

		switch light := l.(type) {
		case *scene.AmbientLight:
			// Ambient accumulates additively across all ambient lights.
			c := light.Color
			if r.gammaInput {
				ambientR += c.R * c.R
				ambientG += c.G * c.G
				ambientB += c.B * c.B
			} else {
				ambientR += c.R
				ambientG += c.G
				ambientB += c.B
			}

		case *scene.DirectionalLight:
			if di >= dirCount {
				continue
			}
			dir := light.MatrixWorld.Position().Sub(light.TargetPosition()).Normalize()
			setColor(la.dirColors, di*3, light.Color, light.Intensity, r.gammaInput)
			la.dirPositions[di*3] = dir.X
			la.dirPositions[di*3+1] = dir.Y
			la.dirPositions[di*3+2] = dir.Z
			di++

		case *scene.PointLight:
			if pi >= pointCount {
				continue
			}
			pos := light.MatrixWorld.Position()
			setColor(la.pointColors, pi*3, light.Color, light.Intensity, r.gammaInput)
			la.pointPositions[pi*3] = pos.X
			la.pointPositions[pi*3+1] = pos.Y
			la.pointPositions[pi*3+2] = pos.Z
			la.pointDistances[pi] = light.Distance
			pi++

		case *scene.SpotLight:
			if si >= spotCount {
				continue
			}
			pos := light.MatrixWorld.Position()
			setColor(la.spotColors, si*3, light.Color, light.Intensity, r.gammaInput)
			la.spotPositions[si*3] = pos.X
			la.spotPositions[si*3+1] = pos.Y
			la.spotPositions[si*3+2] = pos.Z
			la.spotDistances[si] = light.Distance
			dir := pos.Sub(light.TargetPosition()).Normalize()
			la.spotDirections[si*3] = dir.X
			la.spotDirections[si*3+1] = dir.Y
			la.spotDirections[si*3+2] = dir.Z
			la.spotAngles[si] = math32.Cos(light.Angle)
			la.spotExponents[si] = light.Exponent
			si++

		case *scene.HemisphereLight:
			if hi >= hemiCount {
				continue
			}
			pos := light.MatrixWorld.Position().Normalize()
			setColor(la.hemiSkyColors, hi*3, light.Color, light.Intensity, r.gammaInput)
			setColor(la.hemiGroundColors, hi*3, light.GroundColor, light.Intensity, r.gammaInput)
			la.hemiPositions[hi*3] = pos.X
			la.hemiPositions[hi*3+1] = pos.Y
			la.hemiPositions[hi*3+2] = pos.Z
			hi++
		}
	}

	la.ambient = [3]float32{ambientR, ambientG, ambientB}
	la.dirLength = di
	la.pointLength = pi
	la.spotLength = si
	la.hemiLength = hi

	zeroTail(la.dirColors, di*3)
	zeroTail(la.pointColors, pi*3)
	zeroTail(la.spotColors, si*3)
	zeroTail(la.hemiSkyColors, hi*3)
	zeroTail(la.hemiGroundColors, hi*3)
}
