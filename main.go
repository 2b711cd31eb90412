package main

import (
	"flag"

	"lms-chat-server/config"
)

func main() {
	repairRead := flag.Bool("repair-read", false, "mark every stored message as read, then exit")
	flag.Parse()

	if *repairRead {
		config.RunReadRepair()
		return
	}
	config.RunServer()
}
