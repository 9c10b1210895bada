/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension stores a single, validated configuration object under the
"_c:<package>" key. The initial value is loaded from the genesis file, where
it is declared under "conf" and the package name:

	{
		"conf": {
			"stake": {"ticker": "GOAL", "storage_rate": 1}
		}
	}

Not being able to get a configuration value is a critical condition for the
application and there is no recovery path for the client.
*/
package gconf
