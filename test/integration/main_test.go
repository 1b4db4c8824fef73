package integration_test

import "net/url"

func loginForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}
