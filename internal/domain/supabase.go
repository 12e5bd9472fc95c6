package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient gives repositories access to the PostgREST API of a Supabase project.
type SupabaseClient interface {
	Initialize() error
	DB() *supabase.Client
}
