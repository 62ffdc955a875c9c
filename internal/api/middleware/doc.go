// Package middleware contains HTTP middleware for the API router.
package middleware
