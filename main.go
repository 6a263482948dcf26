package main

import "task-list-service.com/task-list-service/cmd"

func main() {
	cmd.Execute()
}
