package all

import (
	_ "github.com/bornholm/libraryms/pkg/search/external"
	_ "github.com/bornholm/libraryms/pkg/search/local"
)
