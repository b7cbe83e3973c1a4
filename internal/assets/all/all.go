package all

import (
	_ "github.com/bornholm/rentacar/internal/assets/local"
	_ "github.com/bornholm/rentacar/internal/assets/s3"
)
