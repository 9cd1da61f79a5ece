package main

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isResourceExhausted(err error) bool {
	return status.Code(err) == codes.ResourceExhausted
}
