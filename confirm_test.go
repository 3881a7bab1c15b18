package main

import "testing"

func TestConfirmerSingleSlot(t *testing.T) {
	c := &Confirmer{}

	if !c.begin() {
		t.Fatal("first begin should claim the slot")
	}
	if c.begin() {
		t.Error("second begin should be rejected while pending")
	}

	c.finish()
	if !c.begin() {
		t.Error("begin should succeed again after finish")
	}
}
