package commands

//go:generate go run go.uber.org/mock/mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
//go:generate go run go.uber.org/mock/mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock
//go:generate go run go.uber.org/mock/mockgen -source=reminder.go -destination=../../../tests/mock/commands/reminder.go -package=commandsmock
//go:generate go run go.uber.org/mock/mockgen -source=restaurant.go -destination=../../../tests/mock/commands/restaurant.go -package=commandsmock
//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock
