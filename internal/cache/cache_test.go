package cache

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/redis/go-redis/v9"
)

func TestKeyIsStable(t *testing.T) {
	s := New(nil, time.Minute, flight.DefaultConstants())
	p := flight.BattingParameters{ExitVelocity: 160, LaunchAngle: 30}

	a, err := s.Key("batting", p)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := s.Key("batting", p)
	if a != b {
		t.Errorf("same input gave %q and %q", a, b)
	}
	if !strings.HasPrefix(a, "ballflight:batting:") {
		t.Errorf("unexpected key %q", a)
	}
}

func TestKeySeparatesInputs(t *testing.T) {
	base := New(nil, time.Minute, flight.DefaultConstants())
	p := flight.BattingParameters{ExitVelocity: 160, LaunchAngle: 30}
	k0, _ := base.Key("batting", p)

	p.SprayAngle = 1
	k1, _ := base.Key("batting", p)

	moon := flight.DefaultConstants()
	moon.Gravity = 1.62
	k2, _ := New(nil, time.Minute, moon).Key("batting", flight.BattingParameters{ExitVelocity: 160, LaunchAngle: 30})

	if k0 == k1 || k0 == k2 || k1 == k2 {
		t.Errorf("keys collide: %q %q %q", k0, k1, k2)
	}
}

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()
	for _, s := range []*Store{nil, New(nil, time.Minute, flight.DefaultConstants())} {
		if s.Enabled() {
			t.Error("store without client reports enabled")
		}
		if err := s.Set(ctx, "k", 1); err != nil {
			t.Errorf("Set: %v", err)
		}
		var v int
		found, err := s.Get(ctx, "k", &v)
		if found || err != nil {
			t.Errorf("Get on disabled store: found=%v err=%v", found, err)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	s := New(rdb, 10*time.Minute, flight.DefaultConstants())
	if !s.Enabled() {
		t.Fatal("store with client reports disabled")
	}
	ctx := context.Background()
	want := flight.SimulateBattedBall(flight.BattingParameters{ExitVelocity: 100, LaunchAngle: 45})
	key, _ := s.Key("batting", flight.BattingParameters{ExitVelocity: 100, LaunchAngle: 45})

	var got flight.TrajectoryResult
	if found, err := s.Get(ctx, key, &got); found || err != nil {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}

	if err := s.Set(ctx, key, want); err != nil {
		t.Fatal(err)
	}
	if ttl := mr.TTL(key); ttl != 10*time.Minute {
		t.Errorf("TTL = %s", ttl)
	}

	found, err := s.Get(ctx, key, &got)
	if !found || err != nil {
		t.Fatalf("found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("stored result differs from the original")
	}

	mr.FastForward(11 * time.Minute)
	if found, _ := s.Get(ctx, key, &got); found {
		t.Error("entry outlived its TTL")
	}
}

func TestStoreCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	s := New(rdb, time.Minute, flight.DefaultConstants())
	mr.Set("ballflight:batting:bad", "{not json")

	var got flight.TrajectoryResult
	found, err := s.Get(context.Background(), "ballflight:batting:bad", &got)
	if found || err == nil {
		t.Errorf("corrupt entry: found=%v err=%v", found, err)
	}
}
