package model

// Package model defines domain data structures used across the app: queued
// input files with their derived display metadata, and the progress state of
// a conversion run. Structures are designed for direct binding in the UI and
// explicit state transitions.
