package main

//go:generate swag init -g cmd/simulator/main.go -o docs

// @title           Project Launch Simulator API
// @version         0.1.0
// @description     Session lifecycle, scoring and leaderboard of the BNB Chain launch simulator.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
