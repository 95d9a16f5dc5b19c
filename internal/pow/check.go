package pow

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
)

// CheckPowData validates that the payload is well formed for the header's
// algorithm. It does not verify work.
func CheckPowData(header *model.BlockHeader, maxParentBlob uint32) error {
	switch header.Pow.Algorithm {
	case model.Sha3:
		if len(header.Pow.Data) != 0 {
			return fmt.Errorf("%w: sha3 header carries %d bytes of pow data", ErrMalformedPowData, len(header.Pow.Data))
		}
		return nil
	case model.RandomX:
		mmd, err := DecodeMergeMineData(header.Pow.Data, maxParentBlob)
		if err != nil {
			return err
		}
		if mmd.AuxChainRoot != header.MiningHash() {
			return fmt.Errorf("%w: merge mining data does not commit to this header", ErrMalformedPowData)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedPowData, header.Pow.Algorithm)
	}
}
