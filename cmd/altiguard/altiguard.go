package main

import "github.com/altiguard/altiguard/internal/app"

func main() {
	app.Run()
}
