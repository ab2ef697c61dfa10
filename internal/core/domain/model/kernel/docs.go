// Package kernel contains the shared value objects of the domain model:
// identifiers, money and postal addresses. All types are immutable and must
// be created through their constructor functions; zero values fail Validate.
package kernel
