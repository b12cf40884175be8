package internal

// Version is the current wordlens version
const Version = "0.4.0"
