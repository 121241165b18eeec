// Package types defines the entity types, collaborator interfaces, and
// standard errors for the Atelier canvas storage core.
//
// The core is a library consumed by server-side request handlers and the
// atelier CLI. It owns no network surface of its own: storage, sessions,
// and cache invalidation are reached through the Store, Session, and
// Revalidator interfaces declared here.
package types
