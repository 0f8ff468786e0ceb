package catalog

// ldapDescriptor covers the directory wrapper: connection, authentication,
// and search against an LDAP server.
func ldapDescriptor() Descriptor {
	return Descriptor{
		Name:        "LDAPModule",
		Description: "Query and authenticate against an LDAP directory server",
		Keywords:    []string{"ldap", "directory", "authenticate", "user", "search", "bind"},
		Methods: []Method{
			{
				Name:        "connect",
				Description: "Establish connection to LDAP server and bind with credentials",
				Parameters: map[string]string{
					"server_uri": "LDAP server URI (e.g. 'ldap://ldap.example.com')",
				},
				Returns: "Nothing on success",
				Examples: []Example{
					{Text: "connect to ldap server {{server_uri}}", Code: "connect(server_uri='{{server_uri}}')"},
				},
			},
			{
				Name:        "authenticate",
				Description: "Verify user credentials against the LDAP directory",
				Parameters: map[string]string{
					"username": "Username to authenticate",
					"password": "User password",
				},
				Returns: "True if authentication succeeded",
				Examples: []Example{
					{Text: "authenticate user {{username}} with password {{password}}", Code: "authenticate(username='{{username}}', password='{{password}}')"},
					{Text: "verify credentials for user {{username}} with password {{password}}", Code: "authenticate(username='{{username}}', password='{{password}}')"},
				},
			},
			{
				Name:        "ldap_search",
				Description: "Execute an LDAP search with a custom filter",
				Parameters: map[string]string{
					"search_base":   "Search base DN (optional, e.g. 'ou=people,dc=example,dc=com')",
					"search_filter": "LDAP filter string (e.g. '(uid=john*)')",
				},
				Returns: "Matching entries with DN and attributes",
				Examples: []Example{
					{Text: "search directory with filter {{search_filter}}", Code: "ldap_search(search_filter='{{search_filter}}')"},
					{Text: "search directory in base {{search_base}} with filter {{search_filter}}", Code: "ldap_search(search_base='{{search_base}}', search_filter='{{search_filter}}')"},
				},
			},
		},
	}
}
