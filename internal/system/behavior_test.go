package system_test

import (
	"math"
	"testing"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces/mocks"
	"go-stg-engine/internal/system"
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"

	"go.uber.org/mock/gomock"
	"golang.org/x/image/math/f64"
	"pgregory.net/rapid"
)

const eps = 1e-9

func TestDestroyDeactivatesActor(t *testing.T) {
	arena := entity.NewArena()
	rec := &recorder{}
	r := system.NewBehaviorResolver(rec)

	shot := playerShot(arena, 0, 0, &component.Behavior{Kind: component.BehaviorDestroy})
	target := enemy(arena, 0, 0, 5)
	r.Resolve(shot, target)

	if shot.Active {
		t.Errorf("shot still active after Destroy")
	}
	if target.HP != 4 {
		t.Errorf("target HP = %d, want 4 (legacy 1 damage)", target.HP)
	}
}

func TestPierceDeactivatesOnThirdHit(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})

	shot := playerShot(arena, 300, 300, &component.Behavior{Kind: component.BehaviorPierce, Remaining: 2})
	targets := []*entity.Object{enemy(arena, 300, 295, 100), enemy(arena, 300, 300, 100), enemy(arena, 300, 305, 100)}

	want := []struct {
		remaining int
		active    bool
	}{{1, true}, {0, true}, {0, false}}
	for i, tgt := range targets {
		r.Resolve(shot, tgt)
		if got := shot.Profile.Behavior.Remaining; got != want[i].remaining || shot.Active != want[i].active {
			t.Fatalf("after hit %d: remaining=%d active=%v, want %d %v", i+1, got, shot.Active, want[i].remaining, want[i].active)
		}
	}
}

func TestPierceIgnoresSameTargetTwice(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})

	shot := playerShot(arena, 0, 0, &component.Behavior{Kind: component.BehaviorPierce, Remaining: 2})
	tgt := enemy(arena, 0, 0, 100)
	r.Resolve(shot, tgt)
	r.Resolve(shot, tgt)

	if shot.Profile.Behavior.Remaining != 1 {
		t.Errorf("remaining = %d, want 1", shot.Profile.Behavior.Remaining)
	}
	if tgt.HP != 99 {
		t.Errorf("HP = %d, want 99", tgt.HP)
	}
}

func TestReflectDecay(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})

	orb := place(arena, types.KindEnemyProjectile, 0, 0, circleProfile(types.LayerEnemyProjectile, 6,
		types.MaskOf(types.LayerTerrain),
		&component.Behavior{Kind: component.BehaviorReflect, Axis: component.AxisVertical, BouncesLeft: 3, Dampen: 0.92}))
	orb.Velocity = f64.Vec2{0, 4}

	speeds := []float64{3.68, 3.68 * 0.92, 3.68 * 0.92 * 0.92}
	for i, want := range speeds {
		r.ResolveTerrain(orb, component.AxisVertical)
		if got := orb.Speed(); math.Abs(got-want) > eps {
			t.Errorf("bounce %d: speed = %v, want %v", i+1, got, want)
		}
		if wantActive := i < 2; orb.Active != wantActive {
			t.Errorf("bounce %d: active = %v, want %v", i+1, orb.Active, wantActive)
		}
	}
}

func TestReflectFirstBounceMirrorsVertical(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})
	orb := place(arena, types.KindEnemyProjectile, 0, 0, circleProfile(types.LayerEnemyProjectile, 6, 0,
		&component.Behavior{Kind: component.BehaviorReflect, Axis: component.AxisVertical, BouncesLeft: 3, Dampen: 0.92}))
	orb.Velocity = f64.Vec2{0, 4}

	r.ResolveTerrain(orb, component.AxisVertical)
	if math.Abs(orb.Velocity[1]+3.68) > eps || orb.Velocity[0] != 0 {
		t.Errorf("velocity = %v, want [0 -3.68]", orb.Velocity)
	}
	if orb.Profile.Behavior.BouncesLeft != 2 {
		t.Errorf("bouncesLeft = %d, want 2", orb.Profile.Behavior.BouncesLeft)
	}
}

func TestReflectAutoPicksShallowAxis(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})
	orb := place(arena, types.KindEnemyProjectile, 0, 0, circleProfile(types.LayerEnemyProjectile, 6, 0,
		&component.Behavior{Kind: component.BehaviorReflect, Axis: component.AxisAuto, BouncesLeft: 2, Dampen: 1}))
	orb.Velocity = f64.Vec2{4, 1}

	// tall obstacle to the right: the x overlap is the shallow one
	wall := place(arena, types.KindEnemy, 8, 0, &component.CollisionProfile{Layer: types.LayerEnemy, Shape: collide.NewRect(5, 50)})
	r.Resolve(orb, wall)

	if orb.Velocity != (f64.Vec2{-4, 1}) {
		t.Errorf("velocity = %v, want [-4 1]", orb.Velocity)
	}
}

func TestReflectWithoutBouncesLeftDeactivates(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})
	orb := place(arena, types.KindEnemyProjectile, 0, 0, circleProfile(types.LayerEnemyProjectile, 6, 0,
		&component.Behavior{Kind: component.BehaviorReflect, BouncesLeft: 0, Dampen: 1}))
	orb.Velocity = f64.Vec2{0, 4}

	r.ResolveTerrain(orb, component.AxisVertical)
	if orb.Active {
		t.Errorf("orb with no bounces left is still active")
	}
	if orb.Velocity != (f64.Vec2{0, 4}) {
		t.Errorf("velocity changed to %v", orb.Velocity)
	}
}

func TestSplitHeadings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := mocks.NewMockCombatContext(ctrl)

	arena := entity.NewArena()
	burst := playerShot(arena, 300, 400, &component.Behavior{
		Kind:           component.BehaviorSplit,
		SpawnArchetype: "player_normal",
		Count:          5,
		SpreadAngle:    math.Pi / 2,
		Speed:          10,
	})
	burst.Velocity = f64.Vec2{0, -12}
	tgt := enemy(arena, 300, 390, 10)

	var got []f64.Vec2
	ctx.EXPECT().SpawnProjectile("player_normal", 300.0, 400.0, gomock.Any()).Times(5).
		DoAndReturn(func(_ string, _, _ float64, ov defs.Overrides) types.Handle {
			got = append(got, *ov.Velocity)
			return types.Handle{}
		})
	ctx.EXPECT().SpawnParticleEffect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	system.NewBehaviorResolver(ctx).Resolve(burst, tgt)

	if burst.Active {
		t.Errorf("burst still active after split")
	}
	want := []float64{-3 * math.Pi / 4, -5 * math.Pi / 8, -math.Pi / 2, -3 * math.Pi / 8, -math.Pi / 4}
	if len(got) != len(want) {
		t.Fatalf("spawned %d, want %d", len(got), len(want))
	}
	for i, v := range got {
		if h := math.Atan2(v[1], v[0]); math.Abs(h-want[i]) > eps {
			t.Errorf("heading[%d] = %v, want %v", i, h, want[i])
		}
		if s := math.Hypot(v[0], v[1]); math.Abs(s-10) > eps {
			t.Errorf("speed[%d] = %v, want 10", i, s)
		}
	}
}

func TestSplitConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 12).Draw(t, "count")
		spread := rapid.Float64Range(0, 2).Draw(t, "spread")
		speed := rapid.Float64Range(0.5, 20).Draw(t, "speed")
		heading := rapid.Float64Range(-1, 1).Draw(t, "heading")

		arena := entity.NewArena()
		rec := &recorder{}
		burst := playerShot(arena, 0, 0, &component.Behavior{
			Kind: component.BehaviorSplit, SpawnArchetype: "shard", Count: count, SpreadAngle: spread, Speed: speed,
		})
		burst.Velocity = f64.Vec2{math.Cos(heading) * 7, math.Sin(heading) * 7}
		system.NewBehaviorResolver(rec).Resolve(burst, enemy(arena, 0, 0, 100))

		if burst.Active {
			t.Fatalf("burst still active")
		}
		if len(rec.spawned) != count {
			t.Fatalf("spawned %d, want %d", len(rec.spawned), count)
		}
		var sum float64
		for _, s := range rec.spawned {
			if got := math.Hypot(s.vel[0], s.vel[1]); math.Abs(got-speed) > 1e-6 {
				t.Fatalf("speed %v, want %v", got, speed)
			}
			sum += math.Atan2(s.vel[1], s.vel[0])
		}
		if mean := sum / float64(count); math.Abs(mean-heading) > 1e-6 {
			t.Fatalf("mean heading %v, want %v", mean, heading)
		}
	})
}

func TestDeathSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := mocks.NewMockCombatContext(ctrl)

	arena := entity.NewArena()
	shot := playerShot(arena, 10, 20, &component.Behavior{
		Kind:  component.BehaviorDestroy,
		OnHit: []component.OnHitEffect{{Kind: component.EffectDamage, Amount: 3}},
	})
	tgt := enemy(arena, 10, 20, 3)

	gomock.InOrder(
		ctx.EXPECT().SpawnParticleEffect(10.0, 20.0, config.HitColor, config.HitParticles),
		ctx.EXPECT().SpawnExplosion(10.0, 20.0),
		ctx.EXPECT().AddScore(config.DefaultEnemyScore),
		ctx.EXPECT().RollItemDrop(10.0, 20.0),
		ctx.EXPECT().Destroyed(tgt),
	)
	system.NewBehaviorResolver(ctx).Resolve(shot, tgt)

	if tgt.Active {
		t.Errorf("target survived lethal damage")
	}
}

func TestKillWithoutDropUsesArchetypeScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := mocks.NewMockCombatContext(ctrl)

	o := entity.New(types.KindEnemy, 1, 2)
	o.Score = 250
	ctx.EXPECT().SpawnExplosion(1.0, 2.0)
	ctx.EXPECT().AddScore(250)
	ctx.EXPECT().Destroyed(o)

	system.NewBehaviorResolver(ctx).Kill(o, false)
	if o.Active {
		t.Errorf("killed object still active")
	}
}

func TestBossBodyDamageNeverKills(t *testing.T) {
	arena := entity.NewArena()
	rec := &recorder{}
	boss := place(arena, types.KindBoss, 0, 0, circleProfile(types.LayerBoss, 40, 0, nil))
	boss.HP, boss.HasHP = 1, true
	shot := playerShot(arena, 0, 0, &component.Behavior{Kind: component.BehaviorDestroy})

	system.NewBehaviorResolver(rec).Resolve(shot, boss)

	if !boss.Active {
		t.Errorf("boss died from body damage")
	}
	if boss.HP != 0 {
		t.Errorf("boss HP = %d, want 0", boss.HP)
	}
	if rec.score != 0 || len(rec.destroyed) != 0 {
		t.Errorf("death sequence ran for boss body")
	}
}

func TestLegacyDamageOnlyForPlayerShots(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})

	bullet := place(arena, types.KindEnemyProjectile, 0, 0, circleProfile(types.LayerEnemyProjectile, 3,
		types.MaskOf(types.LayerEnemy), &component.Behavior{Kind: component.BehaviorDestroy}))
	tgt := enemy(arena, 0, 0, 5)
	r.Resolve(bullet, tgt)

	if tgt.HP != 5 {
		t.Errorf("HP = %d, want 5", tgt.HP)
	}
}

func TestUnknownBehaviorKeepsActor(t *testing.T) {
	arena := entity.NewArena()
	r := system.NewBehaviorResolver(&recorder{})
	shot := playerShot(arena, 0, 0, &component.Behavior{Kind: component.BehaviorNone})
	tgt := enemy(arena, 0, 0, 5)
	r.Resolve(shot, tgt)

	if !shot.Active {
		t.Errorf("actor without behavior was deactivated")
	}
	if tgt.HP != 4 {
		t.Errorf("HP = %d, want 4", tgt.HP)
	}
}

func TestModifyEffects(t *testing.T) {
	tests := []struct {
		property string
		check    func(o *entity.Object) bool
	}{
		{"speed", func(o *entity.Object) bool { return o.Velocity == f64.Vec2{1, 2} }},
		{"vx", func(o *entity.Object) bool { return o.Velocity == f64.Vec2{1, 4} }},
		{"vy", func(o *entity.Object) bool { return o.Velocity == f64.Vec2{2, 2} }},
		{"radius", func(o *entity.Object) bool { return o.Radius == 6 && o.Profile.Shape.Radius == 6 }},
		{"hp", func(o *entity.Object) bool { return o.HP == 5 }},
		{"score", func(o *entity.Object) bool { return o.Score == 50 }},
		{"unknown", func(o *entity.Object) bool { return o.Velocity == f64.Vec2{2, 4} && o.HP == 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			arena := entity.NewArena()
			shot := playerShot(arena, 0, 0, &component.Behavior{
				Kind:  component.BehaviorDestroy,
				OnHit: []component.OnHitEffect{{Kind: component.EffectModify, Property: tt.property, Multiplier: 0.5}},
			})
			tgt := enemy(arena, 0, 0, 10)
			tgt.Velocity = f64.Vec2{2, 4}
			tgt.Radius = 12
			tgt.Score = 100

			system.NewBehaviorResolver(&recorder{}).Resolve(shot, tgt)
			if !tt.check(tgt) {
				t.Errorf("modify %s: got velocity=%v radius=%v hp=%d score=%d", tt.property, tgt.Velocity, tgt.Radius, tgt.HP, tgt.Score)
			}
		})
	}
}

func TestPlayerActor(t *testing.T) {
	arena := entity.NewArena()
	rec := &recorder{}
	r := system.NewBehaviorResolver(rec)
	player := place(arena, types.KindPlayer, 0, 0, defs.DefaultProfile(types.KindPlayer, 4))

	item := place(arena, types.KindItem, 0, 0, defs.DefaultProfile(types.KindItem, 8))
	item.ItemType = config.ItemBomb
	r.Resolve(player, item)
	if item.Active || len(rec.collected) != 1 || rec.collected[0] != config.ItemBomb {
		t.Errorf("item not collected: active=%v collected=%v", item.Active, rec.collected)
	}
	if !player.Active || rec.playerHits != 0 {
		t.Errorf("collecting an item hurt the player")
	}

	r.Resolve(player, enemy(arena, 0, 0, 5))
	if rec.playerHits != 1 {
		t.Errorf("playerHits = %d, want 1", rec.playerHits)
	}
}

func TestTerrainCarvedByPlayerShot(t *testing.T) {
	arena := entity.NewArena()
	rec := &recorder{}
	shot := playerShot(arena, 42, 17, &component.Behavior{Kind: component.BehaviorDestroy})

	system.NewBehaviorResolver(rec).ResolveTerrain(shot, component.AxisVertical)

	if shot.Active {
		t.Errorf("shot survived terrain")
	}
	if len(rec.carved) != 1 || rec.carved[0] != (f64.Vec2{42, 17}) {
		t.Errorf("carved = %v, want [[42 17]]", rec.carved)
	}
}
