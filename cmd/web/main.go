package main

import "talentscout_backend/internal/app"

func main() {
	app.Run()
}
