package scene

import "engine-motion-renderer/internal/mathutil"

// Part is one link in a kinematic chain. Parent indexes an earlier part,
// or -1 for a root.
type Part struct {
	Parent int
	Local  mathutil.Mat4
}

// WorldMatrices chains local transforms parent-first. Parts must be
// ordered so every parent precedes its children.
func WorldMatrices(parts []Part) []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, len(parts))
	for i, p := range parts {
		if p.Parent >= 0 && p.Parent < i {
			worlds[i] = mathutil.Mat4Mul(worlds[p.Parent], p.Local)
		} else {
			worlds[i] = p.Local
		}
	}
	return worlds
}

// crankChain builds the two-part chain for one cylinder's crank throw:
// the shaft frame rotating about X at base, and the pin offset hanging
// off it. The pin's world Y tracks throw·sin(angle), matching the piston
// offset law.
func crankChain(base mathutil.Vec3, angle, throw float64) []Part {
	shaft := mathutil.FromMat3Translation(mathutil.RotX(angle), base)
	pin := mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{0, 0, -throw})
	return []Part{
		{Parent: -1, Local: shaft},
		{Parent: 0, Local: pin},
	}
}

// CrankPin returns the world position of the crank pin for one cylinder.
func CrankPin(base mathutil.Vec3, angle, throw float64) mathutil.Vec3 {
	worlds := WorldMatrices(crankChain(base, angle, throw))
	return worlds[1].MulPoint(mathutil.Vec3{})
}
