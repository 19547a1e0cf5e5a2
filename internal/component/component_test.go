package component

import (
	"testing"

	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"

	"golang.org/x/image/math/f64"
)

func TestProfileCloneDoesNotAlias(t *testing.T) {
	tmpl := &CollisionProfile{
		Layer: types.LayerPlayerProjectile,
		Mask:  types.MaskOf(types.LayerEnemy),
		Shape: collide.NewRect(2, 8),
		Behavior: &Behavior{
			Kind:      BehaviorPierce,
			Remaining: 4,
			OnHit:     []OnHitEffect{{Kind: EffectDamage, Amount: 3}},
		},
	}
	a, b := tmpl.Clone(), tmpl.Clone()
	a.Behavior.Remaining--
	a.Behavior.OnHit[0].Amount = 99
	a.Behavior.MarkStruck(types.Handle{Index: 1, Generation: 1})

	if tmpl.Behavior.Remaining != 4 || b.Behavior.Remaining != 4 {
		t.Errorf("Remaining leaked: template=%d other=%d", tmpl.Behavior.Remaining, b.Behavior.Remaining)
	}
	if tmpl.Behavior.OnHit[0].Amount != 3 {
		t.Error("OnHit shared between clones")
	}
	if len(tmpl.Behavior.Struck) != 0 || len(b.Behavior.Struck) != 0 {
		t.Error("Struck shared between clones")
	}
	if (*CollisionProfile)(nil).Clone() != nil {
		t.Error("nil profile clone != nil")
	}
}

func TestBehaviorStruckOnlyForPierce(t *testing.T) {
	h := types.Handle{Index: 3, Generation: 2}
	pierce := &Behavior{Kind: BehaviorPierce}
	pierce.MarkStruck(h)
	if !pierce.AlreadyStruck(h) {
		t.Error("pierce forgot a struck handle")
	}

	destroy := &Behavior{Kind: BehaviorDestroy}
	destroy.MarkStruck(h)
	if destroy.AlreadyStruck(h) || len(destroy.Struck) != 0 {
		t.Error("non-pierce behavior tracks struck handles")
	}

	var none *Behavior
	none.MarkStruck(h)
	if none.AlreadyStruck(h) {
		t.Error("nil behavior reports a struck handle")
	}
}

func TestGridCloneAndCellAt(t *testing.T) {
	g := &BossGrid{Rows: 2, Cols: 3, CellSize: 10, Cells: [][]*Cell{
		{{HP: 1}, nil, {HP: 2}},
		{{HP: 3}, {HP: 4, Core: true}, {HP: 5}},
	}}
	c := g.Clone()
	c.Cells[1][1].HP = 0
	c.Clear(0, 0)
	if g.Cells[1][1].HP != 4 || g.Get(0, 0) == nil {
		t.Error("clone shares cells with the template")
	}
	if c.Remaining() != 4 || g.Remaining() != 5 {
		t.Errorf("Remaining() = %d/%d, want 4/5", c.Remaining(), g.Remaining())
	}

	tests := []struct {
		local    f64.Vec2
		row, col int
		ok       bool
	}{
		{f64.Vec2{0, 0}, 1, 1, true},
		{f64.Vec2{-15, -10}, 0, 0, true},
		{f64.Vec2{14.9, 9.9}, 1, 2, true},
		{f64.Vec2{15, 0}, 0, 0, false},
		{f64.Vec2{0, -10.1}, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := g.CellAt(tt.local)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("CellAt(%v) = (%d,%d,%v), want (%d,%d,%v)", tt.local, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
	if g.Get(5, 0) != nil || g.Get(0, -1) != nil {
		t.Error("Get out of range returned a cell")
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform(10, 20, 0)
	tr.Scale = f64.Vec2{2, 3}
	m := tr.Matrix()
	x, y := m.Apply(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("Apply(1,1) = (%v,%v), want (12,23)", x, y)
	}
}
