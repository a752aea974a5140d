package components

import "github.com/yohamta/donburi"

type Star struct {
	X, Y  float64
	Speed float64 // pixels per second
}

type StarfieldData struct {
	Stars []Star
}

var Starfield = donburi.NewComponentType[StarfieldData]()
