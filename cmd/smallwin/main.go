package main

import (
	"github.com/kaipengyu/ppl-small-win/cmd/handlers"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
