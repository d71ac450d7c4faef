package models

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestRoomVisible(t *testing.T) {
	now := time.Now()
	soon := now.Add(10 * time.Minute)
	past := now.Add(-10 * time.Minute)

	unassigned := &Match{}
	if unassigned.RoomVisible(now) {
		t.Fatal("room with no credentials must not be visible")
	}

	pending := &Match{RoomID: strptr("12345"), RoomPassword: strptr("pw"), RoomVisibleAt: &soon}
	if pending.RoomVisible(now) {
		t.Fatal("room must stay hidden before the reveal time")
	}
	if !pending.RoomVisible(soon) {
		t.Fatal("room must be visible exactly at the reveal time")
	}

	revealed := &Match{RoomID: strptr("12345"), RoomPassword: strptr("pw"), RoomVisibleAt: &past}
	if !revealed.RoomVisible(now) {
		t.Fatal("room must be visible after the reveal time")
	}
}

func TestRoomViewHidesCredentials(t *testing.T) {
	now := time.Now()
	soon := now.Add(10 * time.Minute)

	m := &Match{RoomID: strptr("99887"), RoomPassword: strptr("hunter2"), RoomVisibleAt: &soon}

	view := m.RoomView(now)
	if view["assigned"] != true {
		t.Fatal("assigned room must report assigned=true")
	}
	if _, ok := view["room_id"]; ok {
		t.Fatal("room_id leaked before reveal time")
	}
	if _, ok := view["room_password"]; ok {
		t.Fatal("room_password leaked before reveal time")
	}

	view = m.RoomView(soon.Add(time.Minute))
	if view["room_id"] != "99887" || view["room_password"] != "hunter2" {
		t.Fatalf("revealed view missing credentials: %v", view)
	}
}

func TestRoomViewUnassigned(t *testing.T) {
	view := (&Match{}).RoomView(time.Now())
	if view["assigned"] != false {
		t.Fatalf("unassigned view = %v; want assigned=false", view)
	}
	if len(view) != 1 {
		t.Fatalf("unassigned view must carry nothing else, got %v", view)
	}
}
