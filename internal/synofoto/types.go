package synofoto

import "syno-photo-gallery/internal/synofoto/api"

// Redeclare the wire API types.
type Photo = api.Photo
type PhotoID = api.PhotoID
type CatalogEntry = api.CatalogEntry
type Filter = api.Filter
type Space = api.Space
type ThumbSize = api.ThumbSize
type AuthError = api.AuthError
type QueryError = api.QueryError
