// Package processor wires the application together: it builds the AI
// gateway, the speech provider and the wordbook store from the resolved
// configuration and launches the GUI. It is the only place the individual
// components are connected.
package processor
