package queries

//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock
//go:generate go run go.uber.org/mock/mockgen -source=restaurant.go -destination=../../../tests/mock/queries/restaurant.go -package=queriesmock
//go:generate go run go.uber.org/mock/mockgen -source=reward.go -destination=../../../tests/mock/queries/reward.go -package=queriesmock
//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock
