// Package quiz implements the true/false quiz session as a pure state
// machine. Presentation layers dispatch actions through Reduce and render
// the ViewModel returned by CurrentView after every step.
package quiz
