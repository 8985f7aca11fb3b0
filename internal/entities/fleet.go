package entities

type FleetSnapshot struct {
	LoadsByStatus  map[LoadStatus]int64
	TrucksByStatus map[TruckStatus]int64
}
