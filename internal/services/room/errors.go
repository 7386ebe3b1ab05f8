package room

// RoomError is a custom error type for room-related errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     RoomError = "room not found"
	ErrPINMismatch      RoomError = "admin PIN does not match"
	ErrPINTooShort      RoomError = "admin PIN must be at least 4 characters"
	ErrInvalidRoomCode  RoomError = "room code must be 4 letters or digits"
	ErrRoundNotFound    RoomError = "round not found"
	ErrInvalidField     RoomError = "unknown round field"
	ErrTeamNameRequired RoomError = "team name is required"
	ErrTeamExists       RoomError = "team already exists"
	ErrTeamNotFound     RoomError = "team not found"
	ErrHostRequired     RoomError = "host ID is required"
	ErrPlayerRequired   RoomError = "player ID is required"
	ErrCodesExhausted   RoomError = "could not allocate a unique room code"

	ErrBuzzClosed       RoomError = "buzzing is closed"
	ErrBuzzDuplicate    RoomError = "player has already buzzed this round"
	ErrBuzzQueueFull    RoomError = "buzz queue is full"
	ErrBuzzNotQualified RoomError = "player is not qualified for this round"

	ErrNilConfig        RoomError = "config cannot be nil"
	ErrNilRoomRepo      RoomError = "room repository cannot be nil"
	ErrNilPlayerRepo    RoomError = "player repository cannot be nil"
	ErrNilCodeGenerator RoomError = "code generator cannot be nil"
	ErrNilClock         RoomError = "clock cannot be nil"
)
