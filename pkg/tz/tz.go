package tz

import "time"

// Zurich is the Europe/Zurich location (CET/CEST with automatic DST).
// Ballot dates and dataset timestamps are Swiss local times.
var Zurich *time.Location

func init() {
	var err error
	Zurich, err = time.LoadLocation("Europe/Zurich")
	if err != nil {
		panic("tz: load Europe/Zurich: " + err.Error())
	}
}
