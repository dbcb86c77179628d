package main

import "noteserv/server"

func main() {
	server.Main()
}
