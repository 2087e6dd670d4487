package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"boxgame/communication/server"
	"boxgame/experiments"
	"boxgame/game"
	"boxgame/gamemaster"
)

func main() {
	weights := flag.String("weights", "", "Comma-separated input token weights, e.g. 1,1,2,3")
	experiment := flag.String("experiment", "", "Experiment to run: generators, lengths or throughput")
	serve := flag.Bool("serve", false, "Start the game master HTTP server")
	flag.Parse()

	switch {
	case *experiment != "":
		runExperiment(*experiment)
	case *serve:
		runServer()
	default:
		runGame(*weights)
	}
}

func runGame(input string) {
	weights, err := parseWeights(input)
	if err != nil {
		fmt.Printf("invalid weights: %v\n", err)
		os.Exit(1)
	}

	scoreA, scoreB := game.Play(weights)
	fmt.Printf("Scores: player A %v, player B %v\n", scoreA, scoreB)
}

func runExperiment(name string) {
	switch name {
	case "generators":
		experiments.RunGeneratorExperiment()
	case "lengths":
		experiments.RunLengthExperiment()
	case "throughput":
		experiments.RunThroughputExperiment()
	default:
		fmt.Printf("unknown experiment: %s\n", name)
		os.Exit(1)
	}
}

func runServer() {
	comm := server.NewServerCommunicator()
	master := gamemaster.NewGameMaster(comm)
	go master.Run()

	fmt.Printf("Game master listening on :8080\n")
	comm.Start()
}

func parseWeights(input string) ([]uint32, error) {
	if input == "" {
		return nil, nil
	}

	parts := strings.Split(input, ",")
	weights := make([]uint32, len(parts))
	for i, part := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		weights[i] = uint32(w)
	}
	return weights, nil
}
