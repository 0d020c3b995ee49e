package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vecsClose(t *testing.T, want, got Vec3, msg string) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], 1e-9, "%s component %d", msg, k)
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}

	vecsClose(t, Vec3{-1, 2.5, 7}, a.Add(b), "add")
	vecsClose(t, Vec3{3, 1.5, -1}, a.Sub(b), "sub")
	assert.InDelta(t, 13.0, a.Dot(b), 1e-12)
	assert.InDelta(t, 1.0, a.Normalize().Len(), 1e-12)
	vecsClose(t, Vec3{}, Vec3{}.Normalize(), "zero normalize")

	vecsClose(t, a, a.Lerp(b, 0), "lerp t=0")
	vecsClose(t, b, a.Lerp(b, 1), "lerp t=1")
	vecsClose(t, Vec3{-0.5, 1.25, 3.5}, a.Lerp(b, 0.5), "lerp midpoint")
}

func TestRotZQuarterTurn(t *testing.T) {
	r := RotZ(math.Pi / 2)
	vecsClose(t, Vec3{0, 1, 0}, r.MulVec3(Vec3{1, 0, 0}), "Rz(90°)·x")
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := Mat3Mul(Mat3Mul(RotX(0.3), RotY(-1.1)), RotZ(2.0))
	id := Mat3Mul(m, m.Inverse())
	want := Mat3Identity()
	for i := range id {
		assert.InDelta(t, want[i], id[i], 1e-9, "element %d", i)
	}
}

func TestQuatMatchesDirectRotation(t *testing.T) {
	// A quaternion built from Euler XYZ must rotate like Rz·Ry·Rx.
	rx, ry, rz := 0.4, -0.7, 1.2
	q := EulerToQuat(rx, ry, rz)
	qm := QuatToMat3(q)
	direct := Mat3Mul(Mat3Mul(RotZ(rz), RotY(ry)), RotX(rx))

	v := Vec3{0.3, -1.5, 2.2}
	vecsClose(t, direct.MulVec3(v), qm.MulVec3(v), "rotation")
}

func TestMat4ChainTranslation(t *testing.T) {
	a := FromMat3Translation(Mat3Identity(), Vec3{1, 0, 0})
	b := FromMat3Translation(RotZ(math.Pi/2), Vec3{0, 2, 0})
	world := Mat4Mul(a, b)

	// a shifts by x+1 after b rotates and lifts.
	vecsClose(t, Vec3{1, 3, 0}, world.MulPoint(Vec3{1, 0, 0}), "chained point")
}
