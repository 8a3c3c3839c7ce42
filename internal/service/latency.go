package service

import "time"

type Operation string

const (
	OpListGames         Operation = "listGames"
	OpGetGame           Operation = "getGame"
	OpAddGame           Operation = "addGame"
	OpUpdateGame        Operation = "updateGame"
	OpDeleteGame        Operation = "deleteGame"
	OpListOrders        Operation = "listOrders"
	OpGetOrder          Operation = "getOrder"
	OpAddOrder          Operation = "addOrder"
	OpUpdateOrderStatus Operation = "updateOrderStatus"
	OpListUsers         Operation = "listUsers"
	OpGetUser           Operation = "getUser"
	OpUpdateUserRole    Operation = "updateUserRole"
	OpDeleteUser        Operation = "deleteUser"
	OpDashboardStats    Operation = "dashboardStats"
)

// ReferenceDelays is the simulated network time of each store operation at
// scale 1.
var ReferenceDelays = map[Operation]time.Duration{
	OpListGames:         800 * time.Millisecond,
	OpGetGame:           500 * time.Millisecond,
	OpAddGame:           1200 * time.Millisecond,
	OpUpdateGame:        1000 * time.Millisecond,
	OpDeleteGame:        800 * time.Millisecond,
	OpListOrders:        900 * time.Millisecond,
	OpGetOrder:          600 * time.Millisecond,
	OpAddOrder:          2000 * time.Millisecond,
	OpUpdateOrderStatus: 700 * time.Millisecond,
	OpListUsers:         800 * time.Millisecond,
	OpGetUser:           500 * time.Millisecond,
	OpUpdateUserRole:    700 * time.Millisecond,
	OpDeleteUser:        800 * time.Millisecond,
	OpDashboardStats:    1000 * time.Millisecond,
}

// Latency makes store operations take as long as a round trip to a backend
// would. The wait cannot be cancelled and always runs to completion.
type Latency struct {
	scale float64
	sleep func(time.Duration)
}

func NewLatency(scale float64) *Latency {
	return NewLatencyWithSleeper(scale, time.Sleep)
}

func NewLatencyWithSleeper(scale float64, sleep func(time.Duration)) *Latency {
	return &Latency{
		scale: max(scale, 0),
		sleep: sleep,
	}
}

func (l *Latency) Delay(op Operation) time.Duration {
	return time.Duration(float64(ReferenceDelays[op]) * l.scale)
}

func (l *Latency) Wait(op Operation) {
	if d := l.Delay(op); d > 0 {
		l.sleep(d)
	}
}
