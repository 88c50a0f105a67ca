package main

import (
	"controle-estagiarios/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
