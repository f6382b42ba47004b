package main

import "github.com/franciscosanchezn/restaurant-manager/cmd/restaurant/commands"

// @title Restaurant Manager API
// @version 1.0
// @description Read-only views over the restaurant database
// @host localhost:8080
// @BasePath /
func main() {
	commands.Execute()
}
