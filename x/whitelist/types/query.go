package types

// NewExtraAccountMetaInfo returns the readable form of meta.
func NewExtraAccountMetaInfo(meta ExtraAccountMeta) ExtraAccountMetaInfo {
	return ExtraAccountMetaInfo{
		Discriminator: uint32(meta.Discriminator),
		AddressConfig: meta.AddressConfig[:],
		IsSigner:      meta.IsSigner,
		IsWritable:    meta.IsWritable,
	}
}

// NewExtraAccountMetaInfos converts metas into their readable form.
func NewExtraAccountMetaInfos(metas []ExtraAccountMeta) []ExtraAccountMetaInfo {
	infos := make([]ExtraAccountMetaInfo, len(metas))
	for i, meta := range metas {
		infos[i] = NewExtraAccountMetaInfo(meta)
	}
	return infos
}
