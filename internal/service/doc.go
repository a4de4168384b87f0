// Package service provides application-level services coordinating the
// domain, agent, and store layers: flashcard review scheduling, quiz
// generation and persistence, and topic-driven flashcard creation.
package service
