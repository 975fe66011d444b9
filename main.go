package main

import "gigflow-api/app"

func main() {
	app.Run()
}
