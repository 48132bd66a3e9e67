package main

import "testing"

func TestResolverAddress(t *testing.T) {
	tests := []struct {
		name    string
		server  string
		want    string
		wantErr bool
	}{
		{name: "ipv4 without port", server: "8.8.8.8", want: "8.8.8.8:53"},
		{name: "ipv4 with port", server: "8.8.8.8:5353", want: "8.8.8.8:5353"},
		{name: "bare ipv6", server: "2400:3200::1", want: "[2400:3200::1]:53"},
		{name: "bracketed ipv6 with port", server: "[2400:3200::1]:53", want: "[2400:3200::1]:53"},
		{name: "hostname without port", server: "dns.example.com", want: "dns.example.com:53"},
		{name: "garbage with colons", server: "bad::host::port", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolverAddress(tt.server)
			if (err != nil) != tt.wantErr {
				t.Errorf("resolverAddress(%q) error = %v, wantErr %v", tt.server, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("resolverAddress(%q) = %q, want %q", tt.server, got, tt.want)
			}
		})
	}
}
